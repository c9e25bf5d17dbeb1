package mongodb

import "time"

// Config describes how to reach the MongoDB deployment.
type Config struct {
	URI      string
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
}
