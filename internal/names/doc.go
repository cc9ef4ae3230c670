// Package names resolves fingerprints to display names using a JSON asset.
//
// The asset is a single JSON object whose keys are fingerprint strings and
// whose values are display names:
//
//	{
//	  "mgKuAmwK9wp+AyIDxQaCBiIB": "Reference Avatar"
//	}
//
// Lookups are exact string matches. A fingerprint that is not in the asset
// resolves to the empty string.
package names
