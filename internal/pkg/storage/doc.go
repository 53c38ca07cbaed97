// Package storage abstracts blob storage behind the Storage interface.
package storage
