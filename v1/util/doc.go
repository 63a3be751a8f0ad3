// Package util contains small helpers shared by the client packages:
// UUID validation and extraction from beacon/REST URLs, local beacon
// formatting, deterministic UUIDv5 generation, and base64 image codecs
// for the server's image modules.
package util
