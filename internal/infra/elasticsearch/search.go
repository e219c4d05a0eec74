package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"vidtube-go/pkg/utils"
)

// BuildTitleQuery 已发布视频标题的字面子串匹配（不区分大小写）
func BuildTitleQuery(term string, from, size int) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"is_published": true}},
					map[string]interface{}{
						"wildcard": map[string]interface{}{
							"title.keyword": map[string]interface{}{
								"value":            "*" + utils.EscapeWildcard(term) + "*",
								"case_insensitive": true,
							},
						},
					},
				},
			},
		},
		"_source": []string{"id"},
		"from":    from,
		"size":    size,
		"sort": []interface{}{
			map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
			map[string]interface{}{"id": map[string]string{"order": "desc"}},
		},
	}
}

// SearchVideoIDs 返回命中的视频 ID（按相关排序）与总数
func SearchVideoIDs(ctx context.Context, term string, from, size int) ([]int64, int64, error) {
	body, err := json.Marshal(BuildTitleQuery(term, from, size))
	if err != nil {
		return nil, 0, err
	}

	resp, err := search(ctx, videosIndex, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, 0, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, esResp.Hits.Total.Value, nil
}

// VideoSearcher 供服务层注入的搜索实现
type VideoSearcher struct{}

func NewVideoSearcher() *VideoSearcher {
	return &VideoSearcher{}
}

func (*VideoSearcher) SearchVideoIDs(ctx context.Context, term string, from, size int) ([]int64, int64, error) {
	return SearchVideoIDs(ctx, term, from, size)
}
