// Package menu implements the interactive console session: numbered menus
// read from an input stream, dispatching to the inventory services and
// printing their results through the output printer.
//
// Every read goes through a Prompter, so a session can be driven from a
// terminal or from a scripted reader in tests. End of input ends the
// session; any other failure is reported and the menu shown again.
package menu
