// Package common contains shared constants and sentinel errors used across
// news-portal components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "

// DefaultCategory is assigned to news articles created without a category.
const DefaultCategory = "General"
