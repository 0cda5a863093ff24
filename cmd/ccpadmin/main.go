package main

import "github.com/zhulik/ccpadmin/internal/cli"

func main() {
	cli.Run()
}
