package service

import (
	"sort"
	"strings"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// SkillExtractor собирает навыки, упомянутые в описаниях кэшированных
// фрилансеров. Результат питает автодополнение на клиенте.
type SkillExtractor struct {
	store *store.Store
	vocab *catalog.Vocabulary
}

// NewSkillExtractor создаёт извлекатель над store и словарём навыков.
func NewSkillExtractor(s *store.Store, vocab *catalog.Vocabulary) *SkillExtractor {
	return &SkillExtractor{store: s, vocab: vocab}
}

// Extract проходит по описаниям всех кэшированных записей и отбирает
// навыки словаря, встречающиеся как подстрока без учёта регистра.
// Результат дедуплицирован, отформатирован для показа (каждое слово с
// заглавной буквы) и отсортирован лексикографически. Пустой store даёт
// пустой список без обращения к upstream.
func (e *SkillExtractor) Extract() []string {
	if e.store.Empty() {
		return nil
	}

	seen := make(map[string]struct{})
	for _, f := range e.store.All() {
		description := strings.ToLower(f.ShortDescription)
		for _, skill := range e.vocab.CommonSkills {
			if strings.Contains(description, strings.ToLower(skill)) {
				seen[formatSkill(skill)] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// formatSkill делает первую букву каждого слова заглавной.
func formatSkill(skill string) string {
	words := strings.Split(skill, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
