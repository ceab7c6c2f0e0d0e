// Package domain defines the core content entities of the portfolio:
// posts, projects and technologies. Each entity is a flat record keyed by
// an integer id assigned by the store on creation. The package holds no
// persistence or transport logic.
package domain
