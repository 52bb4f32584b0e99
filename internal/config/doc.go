// Package config manages user-level settings stored at ~/.beacon/config.yaml.
// It holds default author identity (author, author_email, author_github_id)
// that seeds newly created collection sidecars.
package config
