// Package seed applies user setting definition files to the database.
//
// A definitions file is a YAML document with an ordered list of settings:
//
//	settings:
//	  - key: theme
//	    defaultValue: dark
//	    valueType: string
//	  - key: keymap
//	    defaultValue: default
//	    valueType: string
//	    macDefault: mac
//	    insertOrIgnore: true
//
// Every file is applied inside a single transaction and recorded together with
// its checksum, so running the same file twice is a no-op unless forced.
package seed
