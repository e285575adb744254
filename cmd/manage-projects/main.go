// Command manage-projects creates, lists, validates and syncs portfolio
// projects.
package main

import "go.a-line.be/sitectl"

func main() {
	sitectl.Run(sitectl.Projects)
}
