// Command clockplan evaluates STM32L4 clock profiles on the host: derived bus
// speeds, validation verdicts, bring-up order, a dry-run of the register
// sequence and RTC wakeup encodings.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
