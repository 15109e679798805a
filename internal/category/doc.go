// Package category defines the closed event-category enum and the
// keyword-driven classifiers that map venue taxonomies, titles, and
// ticket URLs onto it.
package category
