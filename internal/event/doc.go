// Package event defines the canonical event model shared by every stage of
// the pipeline: the Event/Artist types published to the frontend, slug
// generation (the stable cross-run identity key), time and price
// normalization, invariant validation, and the slug-keyed merge engine that
// preserves discovery history across daily runs.
package event
