// Command larapath resolves the full URL paths of Laravel route declarations.
package main

import "github.com/abdul-hamid-achik/larapath/cmd/larapath/commands"

func main() {
	commands.Execute()
}
