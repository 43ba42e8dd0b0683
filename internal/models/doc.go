// Package models defines the domain entities for the unitx price comparison tool.
//
// The package contains two kinds of values:
//
//  1. Provisional form state: [RawEntry] holds exactly what the user typed, including blank or partial numbers.
//     It is never ranked.
//  2. Committed offers: [Entry] is a validated product offer with its derived unit price and, once ranked,
//     its savings relative to the most expensive offer in the collection.
//
// Entries are produced by compare.Normalize and ordered by compare.Rank.
package models
