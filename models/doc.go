// Package models holds the data types shared by the store, service and
// transport layers of the portfolio service.
package models
