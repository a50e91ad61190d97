// Package utils provides terminal helpers shared by Kopaki commands.
//
// Passphrase prompts read directly from the terminal with echo disabled.
// When stdin carries piped data, ReadPassphraseFromTTY falls back to
// /dev/tty (CON on Windows) so the prompt still reaches the user.
package utils
