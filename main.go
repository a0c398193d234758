package main

import "github.com/MyCarrier-DevOps/go-semvermanager/cmd"

func main() {
	cmd.Execute()
}
