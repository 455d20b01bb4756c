// confctl inspects and edits confstack settings files.
package main

func main() {
	execute()
}
