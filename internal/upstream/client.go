package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/logger"
	"github.com/souhail4real/freelanci-catalog/internal/metrics"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// ErrEmptyCache возвращается поиском, когда upstream недоступен и в кэше
// нет данных для локального fallback: частичный пустой результат не
// выдаётся молча.
var ErrEmptyCache = errors.New("upstream: кэш пуст, локальный поиск невозможен")

// Client загружает данные каталога из upstream API и кладёт их в store.
// Ошибки загрузки не фатальны: клиент логирует их и возвращает вызывающему,
// а тот деградирует до пустого результата. Параллельные запросы одной и той
// же категории или поискового запроса склеиваются через singleflight.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *store.Store
	group      singleflight.Group
}

// NewClient создаёт клиента каталога.
func NewClient(baseURL string, timeout time.Duration, s *store.Store) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		store: s,
	}
}

// payload — форма ответа get_freelancers для всех трёх действий.
type payload struct {
	Metadata *struct {
		LastUpdated string `json:"last_updated"`
		UpdatedBy   string `json:"updated_by"`
	} `json:"metadata"`
	Categories map[string][]catalog.Freelancer `json:"categories"`
}

// SearchResult — результат поиска с указанием источника.
type SearchResult struct {
	Results []catalog.TaggedFreelancer
	// Fallback выставлен, если upstream не ответил и результаты получены
	// локальным сканом кэша.
	Fallback bool
}

// LoadAll загружает весь каталог и заменяет содержимое store.
// При ошибке store остаётся в прежнем состоянии.
func (c *Client) LoadAll(ctx context.Context) error {
	_, err, _ := c.group.Do("all", func() (interface{}, error) {
		data, err := c.fetch(ctx, "all", url.Values{"action": {"all"}})
		if err != nil {
			logger.Log.WithError(err).Error("upstream: не удалось загрузить каталог")
			return nil, err
		}

		c.store.SetAll(knownCategories(data.Categories))
		c.applyMetadata(data)
		return nil, nil
	})
	return err
}

// LoadCategory загружает одну категорию и заменяет её список в store.
// При ошибке store не изменяется, возвращается пустой список.
func (c *Client) LoadCategory(ctx context.Context, cat catalog.Category) ([]catalog.Freelancer, error) {
	v, err, _ := c.group.Do("category:"+string(cat), func() (interface{}, error) {
		data, err := c.fetch(ctx, "category", url.Values{
			"action":   {"category"},
			"category": {string(cat)},
		})
		if err != nil {
			logger.Log.WithError(err).WithField("category", cat).
				Error("upstream: не удалось загрузить категорию")
			return nil, err
		}

		records := data.Categories[string(cat)]
		c.store.SetCategory(cat, records)
		c.applyMetadata(data)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	records, _ := v.([]catalog.Freelancer)
	return records, nil
}

// Search ищет фрилансеров через upstream. Запрос нормализуется (trim,
// lower); пустой запрос сразу даёт пустой результат без обращения к API.
// При ошибке upstream выполняется локальный скан кэша по подстроке в
// имени или описании; при пустом кэше возвращается ErrEmptyCache.
func (c *Client) Search(ctx context.Context, query string) (SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return SearchResult{}, nil
	}

	v, err, _ := c.group.Do("search:"+query, func() (interface{}, error) {
		data, err := c.fetch(ctx, "search", url.Values{
			"action": {"search"},
			"search": {query},
		})
		if err == nil {
			return SearchResult{Results: flatten(data.Categories)}, nil
		}

		logger.Log.WithError(err).WithField("query", query).
			Warn("upstream: поиск недоступен, переключаемся на локальный")

		if c.store.Empty() {
			return SearchResult{}, ErrEmptyCache
		}
		return SearchResult{Results: c.localSearch(query), Fallback: true}, nil
	})
	if err != nil {
		return SearchResult{}, err
	}
	return v.(SearchResult), nil
}

// localSearch сканирует кэш: совпадением считается вхождение запроса как
// подстроки в имя пользователя или описание без учёта регистра.
func (c *Client) localSearch(query string) []catalog.TaggedFreelancer {
	var results []catalog.TaggedFreelancer
	for _, f := range c.store.All() {
		if strings.Contains(strings.ToLower(f.Username), query) ||
			strings.Contains(strings.ToLower(f.ShortDescription), query) {
			results = append(results, f)
		}
	}
	return results
}

// fetch выполняет GET get_freelancers с указанными параметрами.
func (c *Client) fetch(ctx context.Context, action string, params url.Values) (*payload, error) {
	started := time.Now()

	data, err := c.doFetch(ctx, params)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.ObserveUpstream(action, outcome, started)

	return data, err
}

func (c *Client) doFetch(ctx context.Context, params url.Values) (*payload, error) {
	reqURL := c.baseURL + "/get_freelancers?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: не удалось создать запрос: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: запрос не выполнен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("upstream: неожиданный статус %d", resp.StatusCode)
	}

	var data payload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("upstream: некорректное тело ответа: %w", err)
	}
	if data.Categories == nil {
		return nil, fmt.Errorf("upstream: в ответе нет поля categories")
	}

	return &data, nil
}

// applyMetadata переносит метаданные ответа в store, если они присутствуют.
func (c *Client) applyMetadata(data *payload) {
	if data.Metadata == nil {
		return
	}
	c.store.SetMetadata(catalog.Metadata{
		LastUpdated: data.Metadata.LastUpdated,
		UpdatedBy:   data.Metadata.UpdatedBy,
	})
}

// knownCategories отбрасывает категории вне перечисления.
func knownCategories(raw map[string][]catalog.Freelancer) map[catalog.Category][]catalog.Freelancer {
	out := make(map[catalog.Category][]catalog.Freelancer, len(raw))
	for key, records := range raw {
		c := catalog.Category(key)
		if !c.Valid() {
			logger.Log.WithField("category", key).Warn("upstream: неизвестная категория в ответе, пропущена")
			continue
		}
		out[c] = records
	}
	return out
}

// flatten склеивает сгруппированные по категориям результаты в один список
// в фиксированном порядке категорий.
func flatten(raw map[string][]catalog.Freelancer) []catalog.TaggedFreelancer {
	grouped := knownCategories(raw)

	var out []catalog.TaggedFreelancer
	for _, c := range catalog.AllCategories() {
		for _, f := range grouped[c] {
			out = append(out, catalog.TaggedFreelancer{Freelancer: f, Category: c})
		}
	}
	return out
}
