// Command manage-articles creates, lists, validates and syncs blog articles.
package main

import "go.a-line.be/sitectl"

func main() {
	sitectl.Run(sitectl.Articles)
}
