// Command hotelctl talks to the hotel REST backend from a terminal using the
// same client as the dashboard.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
