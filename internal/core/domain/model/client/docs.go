// Package client provides the Client aggregate: a person who places orders.
//
// A client is identified by the national ID held in its kernel.PersonalInfo
// and carries the default delivery address copied into new orders.
package client
