// Package testsupport holds helpers shared by tests: temp-directory configs,
// config files on disk, and history stores that close themselves.
package testsupport
