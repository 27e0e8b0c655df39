package nlp

import "parley/internal/domain"

// Extract applies every entity pattern in library order and collects all
// non-empty capture groups of every match, in order of appearance and with
// duplicates preserved. The returned map always contains every known entity
// type key, empty when nothing matched. Pure function.
func Extract(text string) domain.EntityMap {
	out := domain.NewEntityMap()
	for _, et := range entityLibrary {
		for _, re := range et.patterns {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				for _, group := range match[1:] {
					if group != "" {
						out[et.name] = append(out[et.name], group)
					}
				}
			}
		}
	}
	return out
}
