// go-items serves the items API and renders views of item files.
//
// Usage:
//
//	go-items serve [--config go-items.yaml] [--port 5000] [--data-file items.itms]
//	go-items view items.json --search apple --sort name --order desc --page 2 --size 5
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
