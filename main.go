package main

import "alarmclock/cmd"

func main() {
	cmd.Execute()
}
