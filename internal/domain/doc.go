// Package domain defines the core business entities of the catalog
// (characters, planets, vehicles), the users who browse it, and the
// favorite links between the two. It has no knowledge of storage or HTTP.
package domain
