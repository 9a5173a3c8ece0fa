// Package extract pulls article titles and company cards out of article
// pages.
//
// Pages are parsed into a Document, a small query interface backed by
// goquery. The Extractor walks that document for the article title, the
// company sidebar and the company cards inside it, and turns the result
// into model.CompanyRecord values. Missing company fields degrade to
// model.Unknown; a missing title makes the whole page unusable.
package extract
