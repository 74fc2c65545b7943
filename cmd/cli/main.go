package main

import "github.com/dmitrijs2005/moneyboy/internal/client/cli"

func main() {
	cli.Execute()
}
