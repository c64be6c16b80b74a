package main

import "github.com/uzaira123/Uzaira-Library-lsm/cmd"

func main() {
	cmd.Execute()
}
