package search

// IDAStarWithBounds exposes the bound hook to the external test package.
var IDAStarWithBounds = idaStar
