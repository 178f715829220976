// Package main provides the entry point for the user setting seeder.
// It reads a YAML file of user setting definitions and inserts every setting
// into the user_setting table exactly once, either strictly or ignoring rows
// that already exist. The application uses gorm for persistence and supports
// sqlite, mysql and postgres.
package main
