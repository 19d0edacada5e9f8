package main

import "github.com/richardanaya/news-search/cmd/newsgrep/cmd"

func main() {
	cmd.Execute()
}
