/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/gemchat-dev/gemchat/cmd"

func main() {
	cmd.Execute()
}
