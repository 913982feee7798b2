// Package search ranks manual sections against natural-language
// queries. Each section receives four sub-scores: a title relevance
// score, a keyword overlap score, a semantic cosine similarity score
// against a precomputed section embedding, and a content quality
// bonus. The weighted total orders the results; sections below the
// relevance threshold are excluded entirely.
//
// The lexical scorers carry Korean lookup tables for the vehicle
// manual domain (core maintenance terms, topic/action combinations,
// synonym clusters). The semantic score is optional: when the query
// embedding is unavailable the ranker degrades to lexical-only
// scoring rather than failing.
package search
