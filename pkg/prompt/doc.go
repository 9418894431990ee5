// Package prompt runs the interactive terminal loop: ask for an idea, show the
// analysis, and offer the views and exports of the result until the user
// quits.
package prompt
