// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (projects and
// their repositories, chat sessions, service tokens, settings and deploy
// integrations) and are intentionally free of infrastructure concerns so
// they can be shared across packages.
package domain
