// Package cli implements the interactive WorldQuery terminal client: a
// read–eval–print loop over the account, browse, comparison, and map
// commands. Handlers print user-facing feedback to the app writer and log
// operational errors; the loop itself only terminates on EOF or an explicit
// exit command.
package cli
