// Package utils provides small platform helpers shared by the command layer:
// reading piped input and opening URLs in the default browser.
package utils
