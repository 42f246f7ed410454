// Package config loads the MySQL connection settings used by the OrthoMCL
// provisioning tooling from a line-oriented sectioned file:
//
//	# comments start with '#'
//	[mysql]
//	host = 127.0.0.1
//	port = 3306
//	user = root
//	pass = secret
//
// Only the [mysql] section is read. Other sections and unrecognized keys are
// ignored, so the same file can carry operator notes and settings for other
// tools without breaking older loaders.
package config
