// Package domain contains the core domain entities of the vocabulary service:
// users, their word pairs and transient translations. Entities are always
// created through constructors that normalize their fields, so a value of
// these types is valid by construction. The package is free of storage and
// transport concerns and is shared by every other layer.
package domain
