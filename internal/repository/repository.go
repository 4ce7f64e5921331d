// Package repository handles all interactions with the database.
//
// It wraps MongoDB administrative commands (collections, indexes,
// server status) and returns driver errors untouched, so the error
// pipeline sees them exactly as the driver produced them
package repository
