// main.go
package main

import "dotlink/cmd"

func main() {
	cmd.Execute()
}
