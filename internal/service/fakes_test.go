package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"gorm.io/gorm"
)

// memDB 内存版数据，供各 Store fake 共享
type memDB struct {
	mu sync.Mutex

	seq       int64
	users     map[int64]*model.User
	videos    map[int64]*model.Video
	comments  map[int64]*model.Comment
	history   map[int64][]int64
	videoLike map[int64][]int64 // video -> 点赞用户，按时间顺序
	cmtLike   map[int64][]int64
	subs      map[[2]int64]bool
	playlists map[int64]*model.Playlist
	plVideos  map[int64][]int64
}

func newMemDB() *memDB {
	return &memDB{
		users:     map[int64]*model.User{},
		videos:    map[int64]*model.Video{},
		comments:  map[int64]*model.Comment{},
		history:   map[int64][]int64{},
		videoLike: map[int64][]int64{},
		cmtLike:   map[int64][]int64{},
		subs:      map[[2]int64]bool{},
		playlists: map[int64]*model.Playlist{},
		plVideos:  map[int64][]int64{},
	}
}

func (db *memDB) nextID() int64 {
	db.seq++
	return db.seq
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func toggle(list []int64, id int64) ([]int64, bool) {
	for i, v := range list {
		if v == id {
			return append(list[:i:i], list[i+1:]...), false
		}
	}
	return append(list, id), true
}

func contains(list []int64, id int64) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// ---- users ----

type fakeUsers struct{ db *memDB }

func (f fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) GetByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	_, err := f.GetByUsernameOrEmail(ctx, username, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f fakeUsers) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeUsers) Create(_ context.Context, user *model.User) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.db.nextID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.db.users[user.ID] = &cp
	return nil
}

func (f fakeUsers) Update(_ context.Context, id int64, updates map[string]interface{}) (*model.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		s, _ := v.(string)
		switch k {
		case "fullname":
			u.Fullname = s
		case "email":
			u.Email = s
		case "password":
			u.Password = s
		case "avatar_url":
			u.AvatarURL = s
		case "avatar_id":
			u.AvatarID = s
		case "cover_image_url":
			u.CoverImageURL = s
		case "cover_image_id":
			u.CoverImageID = s
		default:
			return nil, fmt.Errorf("unknown column %s", k)
		}
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) SetRefreshToken(_ context.Context, id int64, token string) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.RefreshToken = token
	return nil
}

func (f fakeUsers) RotateRefreshToken(_ context.Context, id int64, current, next string) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[id]
	if !ok || u.RefreshToken != current {
		return false, nil
	}
	u.RefreshToken = next
	return true, nil
}

func (f fakeUsers) List(_ context.Context, skip, limit int) ([]model.User, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	all := make([]model.User, 0, len(f.db.users))
	for _, u := range f.db.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), int64(len(all)), nil
}

func (f fakeUsers) GetChannelProfile(_ context.Context, username string, viewerID int64) (*repository.ChannelProfile, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Username != username {
			continue
		}
		p := &repository.ChannelProfile{
			ID:            u.ID,
			Username:      u.Username,
			Fullname:      u.Fullname,
			Email:         u.Email,
			AvatarURL:     u.AvatarURL,
			CoverImageURL: u.CoverImageURL,
			IsSubscribed:  f.db.subs[[2]int64{viewerID, u.ID}],
		}
		for pair := range f.db.subs {
			if pair[1] == u.ID {
				p.SubscribersCount++
			}
			if pair[0] == u.ID {
				p.ChannelsSubscribedToCount++
			}
		}
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) ListWatchHistory(_ context.Context, userID int64) ([]model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var videos []model.Video
	for _, id := range f.db.history[userID] {
		if v, ok := f.db.videos[id]; ok {
			videos = append(videos, f.db.withOwner(v))
		}
	}
	return videos, nil
}

// ---- videos ----

type fakeVideos struct{ db *memDB }

func (db *memDB) withOwner(v *model.Video) model.Video {
	cp := *v
	if u, ok := db.users[v.OwnerID]; ok {
		cp.Owner = *u
	}
	return cp
}

func (f fakeVideos) GetByID(_ context.Context, id int64) (*model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	v, ok := f.db.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (f fakeVideos) GetByIDWithOwner(_ context.Context, id int64) (*model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	v, ok := f.db.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := f.db.withOwner(v)
	return &cp, nil
}

func (f fakeVideos) GetByIDsWithOwner(_ context.Context, ids []int64) ([]model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var videos []model.Video
	for _, id := range ids {
		if v, ok := f.db.videos[id]; ok {
			videos = append(videos, f.db.withOwner(v))
		}
	}
	return videos, nil
}

func (f fakeVideos) Create(_ context.Context, video *model.Video) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	video.ID = f.db.nextID()
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	cp := *video
	cp.Owner = model.User{}
	f.db.videos[video.ID] = &cp
	return nil
}

func (f fakeVideos) Update(_ context.Context, id int64, updates map[string]interface{}) (*model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	v, ok := f.db.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, val := range updates {
		switch k {
		case "title":
			v.Title = val.(string)
		case "description":
			v.Description = val.(string)
		case "thumbnail_url":
			v.ThumbnailURL = val.(string)
		case "thumbnail_id":
			v.ThumbnailID = val.(string)
		case "is_published":
			v.IsPublished = val.(bool)
		default:
			return nil, fmt.Errorf("unknown column %s", k)
		}
	}
	cp := f.db.withOwner(v)
	return &cp, nil
}

func (f fakeVideos) List(_ context.Context, q repository.VideoQuery) ([]model.Video, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var all []model.Video
	for _, v := range f.db.videos {
		if q.OwnerID != nil && v.OwnerID != *q.OwnerID {
			continue
		}
		if !v.IsPublished && (q.ViewerID == 0 || v.OwnerID != q.ViewerID) {
			continue
		}
		if q.Title != "" && !strings.Contains(strings.ToLower(v.Title), strings.ToLower(q.Title)) {
			continue
		}
		all = append(all, f.db.withOwner(v))
	}
	sort.Slice(all, func(i, j int) bool {
		if q.SortDesc {
			return all[i].ID > all[j].ID
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, q.Skip, q.Limit), int64(len(all)), nil
}

func (f fakeVideos) RecordView(_ context.Context, videoID, viewerID int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	v, ok := f.db.videos[videoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Views++
	if !contains(f.db.history[viewerID], videoID) {
		f.db.history[viewerID] = append(f.db.history[viewerID], videoID)
	}
	return nil
}

func (f fakeVideos) DeleteCascade(_ context.Context, videoID int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if _, ok := f.db.videos[videoID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.db.videos, videoID)
	delete(f.db.videoLike, videoID)
	for id, c := range f.db.comments {
		if c.VideoID == videoID {
			delete(f.db.comments, id)
			delete(f.db.cmtLike, id)
		}
	}
	return nil
}

// ---- likes ----

type fakeLikes struct{ db *memDB }

func (f fakeLikes) ToggleVideoLike(_ context.Context, videoID, userID int64) (bool, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	list, liked := toggle(f.db.videoLike[videoID], userID)
	f.db.videoLike[videoID] = list
	return liked, int64(len(list)), nil
}

func (f fakeLikes) ToggleCommentLike(_ context.Context, commentID, userID int64) (bool, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	list, liked := toggle(f.db.cmtLike[commentID], userID)
	f.db.cmtLike[commentID] = list
	return liked, int64(len(list)), nil
}

func (f fakeLikes) CountByVideo(_ context.Context, videoID int64) (int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return int64(len(f.db.videoLike[videoID])), nil
}

func (f fakeLikes) IsVideoLiked(_ context.Context, videoID, userID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return contains(f.db.videoLike[videoID], userID), nil
}

func (f fakeLikes) CountByVideos(_ context.Context, ids []int64) (map[int64]int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	counts := make(map[int64]int64, len(ids))
	for _, id := range ids {
		if n := len(f.db.videoLike[id]); n > 0 {
			counts[id] = int64(n)
		}
	}
	return counts, nil
}

func (f fakeLikes) ListLikedVideos(_ context.Context, userID int64, skip, limit int) ([]model.Video, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var all []model.Video
	for id, users := range f.db.videoLike {
		v, ok := f.db.videos[id]
		if !ok || !contains(users, userID) {
			continue
		}
		if v.IsPublished || v.OwnerID == userID {
			all = append(all, f.db.withOwner(v))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, skip, limit), int64(len(all)), nil
}

// ---- comments ----

type fakeComments struct{ db *memDB }

func (f fakeComments) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	c, ok := f.db.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f fakeComments) GetByIDWithOwner(ctx context.Context, id int64) (*model.Comment, error) {
	c, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if u, ok := f.db.users[c.OwnerID]; ok {
		c.Owner = *u
	}
	return c, nil
}

func (f fakeComments) Create(_ context.Context, comment *model.Comment) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	comment.ID = f.db.nextID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	f.db.comments[comment.ID] = &cp
	return nil
}

func (f fakeComments) UpdateContent(_ context.Context, id int64, content string) (*model.Comment, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	c, ok := f.db.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Content = content
	cp := *c
	return &cp, nil
}

func (f fakeComments) Delete(_ context.Context, id int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if _, ok := f.db.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.db.comments, id)
	delete(f.db.cmtLike, id)
	return nil
}

func (f fakeComments) ListByVideo(_ context.Context, videoID, viewerID int64, skip, limit int) ([]repository.CommentRow, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var rows []repository.CommentRow
	for _, c := range f.db.comments {
		if c.VideoID != videoID {
			continue
		}
		owner := f.db.users[c.OwnerID]
		rows = append(rows, repository.CommentRow{
			ID:            c.ID,
			Content:       c.Content,
			VideoID:       c.VideoID,
			OwnerID:       c.OwnerID,
			OwnerUsername: owner.Username,
			LikesCount:    int64(len(f.db.cmtLike[c.ID])),
			IsLiked:       contains(f.db.cmtLike[c.ID], viewerID),
			CreatedAt:     c.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return paginate(rows, skip, limit), int64(len(rows)), nil
}

// ---- subscriptions ----

type fakeSubscriptions struct{ db *memDB }

func (f fakeSubscriptions) Create(_ context.Context, subscriberID, channelID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	key := [2]int64{subscriberID, channelID}
	if f.db.subs[key] {
		return false, nil
	}
	f.db.subs[key] = true
	return true, nil
}

func (f fakeSubscriptions) Delete(_ context.Context, subscriberID, channelID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	key := [2]int64{subscriberID, channelID}
	if !f.db.subs[key] {
		return false, nil
	}
	delete(f.db.subs, key)
	return true, nil
}

func (f fakeSubscriptions) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	deleted, err := f.Delete(ctx, subscriberID, channelID)
	if err != nil || deleted {
		return false, err
	}
	return f.Create(ctx, subscriberID, channelID)
}

func (f fakeSubscriptions) CountSubscribers(_ context.Context, channelID int64) (int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var n int64
	for pair := range f.db.subs {
		if pair[1] == channelID {
			n++
		}
	}
	return n, nil
}

func (f fakeSubscriptions) users(match func(pair [2]int64) (int64, bool), skip, limit int) ([]model.User, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var all []model.User
	for pair := range f.db.subs {
		if id, ok := match(pair); ok {
			all = append(all, *f.db.users[id])
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), int64(len(all)), nil
}

func (f fakeSubscriptions) ListChannels(_ context.Context, subscriberID int64, skip, limit int) ([]model.User, int64, error) {
	return f.users(func(p [2]int64) (int64, bool) { return p[1], p[0] == subscriberID }, skip, limit)
}

func (f fakeSubscriptions) ListSubscribers(_ context.Context, channelID int64, skip, limit int) ([]model.User, int64, error) {
	return f.users(func(p [2]int64) (int64, bool) { return p[0], p[1] == channelID }, skip, limit)
}

// ---- playlists ----

type fakePlaylists struct{ db *memDB }

func (f fakePlaylists) GetByID(_ context.Context, id int64) (*model.Playlist, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	p, ok := f.db.playlists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePlaylists) GetByOwnerAndName(_ context.Context, ownerID int64, name string) (*model.Playlist, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, p := range f.db.playlists {
		if p.OwnerID == ownerID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakePlaylists) ExistsByName(_ context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, p := range f.db.playlists {
		if p.OwnerID == ownerID && p.Name == name && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakePlaylists) Create(_ context.Context, playlist *model.Playlist) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	playlist.ID = f.db.nextID()
	cp := *playlist
	f.db.playlists[playlist.ID] = &cp
	return nil
}

func (f fakePlaylists) Update(_ context.Context, id int64, updates map[string]interface{}) (*model.Playlist, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	p, ok := f.db.playlists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		p.Description = v.(string)
	}
	cp := *p
	return &cp, nil
}

func (f fakePlaylists) Delete(_ context.Context, id int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if _, ok := f.db.playlists[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.db.playlists, id)
	delete(f.db.plVideos, id)
	return nil
}

func (f fakePlaylists) ListByOwner(_ context.Context, ownerID int64) ([]model.Playlist, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var items []model.Playlist
	for _, p := range f.db.playlists {
		if p.OwnerID == ownerID {
			items = append(items, *p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f fakePlaylists) AddVideo(_ context.Context, playlistID, videoID int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if !contains(f.db.plVideos[playlistID], videoID) {
		f.db.plVideos[playlistID] = append(f.db.plVideos[playlistID], videoID)
	}
	return nil
}

func (f fakePlaylists) RemoveVideo(_ context.Context, playlistID, videoID int64) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	list := f.db.plVideos[playlistID]
	if !contains(list, videoID) {
		return false, nil
	}
	f.db.plVideos[playlistID], _ = toggle(list, videoID)
	return true, nil
}

func (f fakePlaylists) ListVideos(_ context.Context, playlistIDs []int64) (map[int64][]model.Video, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := make(map[int64][]model.Video, len(playlistIDs))
	for _, pid := range playlistIDs {
		for _, vid := range f.db.plVideos[pid] {
			if v, ok := f.db.videos[vid]; ok {
				out[pid] = append(out[pid], f.db.withOwner(v))
			}
		}
	}
	return out, nil
}

// ---- media / events / search ----

type fakeMedia struct {
	mu        sync.Mutex
	failAfter int // 第 n 次上传后开始失败，0 表示不失败
	uploads   int
	uploaded  []string
	deleted   []string
}

func (m *fakeMedia) Upload(_ context.Context, localPath, folder string) (*media.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if localPath == "" {
		return nil, media.ErrNoFile
	}
	m.uploads++
	if m.failAfter > 0 && m.uploads > m.failAfter {
		return nil, errors.New("storage unavailable")
	}
	id := path.Join(folder, path.Base(localPath))
	m.uploaded = append(m.uploaded, id)
	return &media.Asset{URL: "https://cdn.test/" + id, PublicID: id}, nil
}

func (m *fakeMedia) Delete(_ context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if publicID != "" {
		m.deleted = append(m.deleted, publicID)
	}
	return nil
}

type fakeEvents struct {
	events    []kafka.VideoEvent
	deadlines []bool
}

// PublishVideoEvent 与 kafka writer 一样，ctx 已取消时直接失败
func (e *fakeEvents) PublishVideoEvent(ctx context.Context, event *kafka.VideoEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, ok := ctx.Deadline()
	e.deadlines = append(e.deadlines, ok)
	e.events = append(e.events, *event)
	return nil
}

func (e *fakeEvents) types() []string {
	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}

type fakeSearcher struct {
	ids   []int64
	total int64
	err   error
}

func (s *fakeSearcher) SearchVideoIDs(_ context.Context, _ string, _, _ int) ([]int64, int64, error) {
	return s.ids, s.total, s.err
}

// ---- seed helpers ----

func (db *memDB) addUser(username string) *model.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	u := &model.User{
		ID:        db.nextID(),
		Username:  username,
		Email:     username + "@example.com",
		Fullname:  strings.ToUpper(username[:1]) + username[1:],
		AvatarURL: "https://cdn.test/" + username + ".png",
	}
	db.users[u.ID] = u
	return u
}

func (db *memDB) addVideo(ownerID int64, title string, published bool) *model.Video {
	db.mu.Lock()
	defer db.mu.Unlock()
	v := &model.Video{
		ID:          db.nextID(),
		OwnerID:     ownerID,
		Title:       title,
		IsPublished: published,
		CreatedAt:   time.Now(),
	}
	db.videos[v.ID] = v
	return v
}
