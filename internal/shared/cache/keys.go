// Package cache holds the redis key space for cached listings. Keys live in
// one place because invalidation crosses resource boundaries: a company code
// rename or delete changes the industry listing's companies arrays too.
package cache

const (
	CompanyAllKey  = "companies:all"
	IndustryAllKey = "industries:all"
)
