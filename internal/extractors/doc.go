// Package extractors provides text extraction from raw document bytes,
// dispatched by MIME type through a registry. Extraction only produces
// plain text; cleaning and chunking are handled by the chunker.
package extractors
