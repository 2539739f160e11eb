package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary задаёт словарь ключевых слов каталога: список ключевых слов
// каждой категории (для классификации) и общий список навыков, по которому
// работает извлечение навыков из описаний.
type Vocabulary struct {
	CategoryKeywords map[Category][]string `yaml:"category_keywords"`
	CommonSkills     []string              `yaml:"common_skills"`
}

// DefaultVocabulary возвращает встроенный словарь.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		CategoryKeywords: map[Category][]string{
			CategoryWebDevelopment: {
				"web", "developer", "development", "javascript", "react", "vue",
				"angular", "node", "php", "laravel", "html", "css", "bootstrap",
				"tailwind", "wordpress", "shopify", "frontend", "backend", "full stack",
			},
			CategoryMobileDevelopment: {
				"mobile", "android", "ios", "flutter", "react native", "kotlin",
				"swift", "dart", "xamarin", "ionic", "app development", "pwa", "mobile app",
			},
			CategoryDataScienceML: {
				"data", "machine learning", "artificial intelligence", "ai", "ml",
				"python", "pandas", "tensorflow", "pytorch", "scikit", "data analysis",
				"data scientist", "big data", "nlp", "deep learning", "neural network",
			},
			CategoryCybersecurity: {
				"security", "cyber", "ethical hacking", "penetration testing", "pen test",
				"infosec", "firewall", "cryptography", "encryption", "vulnerability",
				"security audit", "siem", "compliance", "gdpr",
			},
			CategoryCloudDevOps: {
				"cloud", "aws", "azure", "gcp", "google cloud", "devops", "docker",
				"kubernetes", "jenkins", "ci/cd", "terraform", "ansible",
				"infrastructure", "iaas", "paas", "saas", "microservices", "serverless",
			},
		},
		CommonSkills: []string{
			"javascript", "react", "vue", "angular", "node", "php", "laravel",
			"html", "css", "bootstrap", "tailwind", "wordpress", "shopify",
			"android", "ios", "flutter", "react native", "kotlin", "swift",
			"python", "tensorflow", "pytorch", "data analysis",
			"machine learning", "ai", "ml", "deep learning",
			"security", "ethical hacking", "penetration testing", "encryption",
			"aws", "azure", "gcp", "docker", "kubernetes", "devops",
		},
	}
}

// LoadVocabulary читает словарь из YAML файла. Пустые поля файла
// дополняются встроенными значениями.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: не удалось прочитать словарь %s: %w", path, err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("catalog: не удалось распарсить словарь %s: %w", path, err)
	}

	defaults := DefaultVocabulary()
	if len(v.CategoryKeywords) == 0 {
		v.CategoryKeywords = defaults.CategoryKeywords
	}
	if len(v.CommonSkills) == 0 {
		v.CommonSkills = defaults.CommonSkills
	}

	for c := range v.CategoryKeywords {
		if !c.Valid() {
			return nil, fmt.Errorf("catalog: словарь содержит неизвестную категорию %q", c)
		}
	}

	return &v, nil
}
