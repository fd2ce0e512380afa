package main

import "github.com/crystaldolphin/supatools/cmd"

func main() {
	cmd.Execute()
}
