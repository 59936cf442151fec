// Package client talks to the remote blog API over HTTP and bootstraps the
// local sqlite database. It exposes a narrow Client interface so application
// services can be tested against fakes.
package client
