package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/yourname/moodjournal/internal"
)

type FileStorage struct {
	records    map[string][]*internal.EmotionRecord // userID -> records (sorted descending)
	activities map[string][]internal.Activity       // userID -> catalog
	profiles   map[string]*internal.UserProfile     // userID -> profile
	mu         sync.RWMutex

	recordsFile    string
	activitiesFile string
	profilesFile   string

	saveRecordsChan    chan struct{}
	saveActivitiesChan chan struct{}
	saveProfilesChan   chan struct{}
	shutdownChan       chan struct{}
	wg                 sync.WaitGroup
	closeOnce          sync.Once
	saveDelay          time.Duration
	logger             internal.Logger
}

type storedActivities struct {
	UserID     string              `json:"user_id"`
	Activities []internal.Activity `json:"activities"`
}

type storedProfile struct {
	UserID  string               `json:"user_id"`
	Profile internal.UserProfile `json:"profile"`
}

func NewFileStorage(recordsFile, activitiesFile, profilesFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		records:            make(map[string][]*internal.EmotionRecord),
		activities:         make(map[string][]internal.Activity),
		profiles:           make(map[string]*internal.UserProfile),
		recordsFile:        recordsFile,
		activitiesFile:     activitiesFile,
		profilesFile:       profilesFile,
		saveRecordsChan:    make(chan struct{}, 1),
		saveActivitiesChan: make(chan struct{}, 1),
		saveProfilesChan:   make(chan struct{}, 1),
		shutdownChan:       make(chan struct{}),
		saveDelay:          500 * time.Millisecond,
		logger:             logger,
	}

	if err := s.loadRecords(); err != nil {
		logger.Errorf("storage: failed to load records: %v", err)
		return nil, err
	}
	if err := s.loadActivities(); err != nil {
		logger.Errorf("storage: failed to load activities: %v", err)
		return nil, err
	}
	if err := s.loadProfiles(); err != nil {
		logger.Errorf("storage: failed to load profiles: %v", err)
		return nil, err
	}

	s.startWorker("records", s.saveRecordsChan, s.saveRecords)
	s.startWorker("activities", s.saveActivitiesChan, s.saveActivities)
	s.startWorker("profiles", s.saveProfilesChan, s.saveProfiles)

	return s, nil
}

// readJSON decodes path into v. A missing or empty file leaves v untouched.
func readJSON(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStorage) loadRecords() error {
	var recs []*internal.EmotionRecord
	if err := readJSON(s.recordsFile, &recs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.records[r.UserID] = append(s.records[r.UserID], r)
	}
	for userID := range s.records {
		sortNewestFirst(s.records[userID])
	}
	return nil
}

func (s *FileStorage) loadActivities() error {
	var stored []storedActivities
	if err := readJSON(s.activitiesFile, &stored); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range stored {
		s.activities[a.UserID] = a.Activities
	}
	return nil
}

func (s *FileStorage) loadProfiles() error {
	var stored []storedProfile
	if err := readJSON(s.profilesFile, &stored); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range stored {
		profile := p.Profile
		s.profiles[p.UserID] = &profile
	}
	return nil
}

func sortNewestFirst(recs []*internal.EmotionRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Timestamp > recs[j].Timestamp
	})
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveRecords() error {
	s.mu.RLock()
	recs := make([]*internal.EmotionRecord, 0)
	for _, userRecs := range s.records {
		recs = append(recs, userRecs...)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.recordsFile, recs)
}

func (s *FileStorage) saveActivities() error {
	s.mu.RLock()
	stored := make([]storedActivities, 0, len(s.activities))
	for userID, acts := range s.activities {
		stored = append(stored, storedActivities{UserID: userID, Activities: acts})
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.activitiesFile, stored)
}

func (s *FileStorage) saveProfiles() error {
	s.mu.RLock()
	stored := make([]storedProfile, 0, len(s.profiles))
	for userID, p := range s.profiles {
		stored = append(stored, storedProfile{UserID: userID, Profile: *p})
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.profilesFile, stored)
}

// startWorker batches saves: every signal pushes the write back by saveDelay.
func (s *FileStorage) startWorker(name string, signal <-chan struct{}, save func() error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(s.saveDelay)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-signal:
				timer.Reset(s.saveDelay)
			case <-timer.C:
				if err := save(); err != nil {
					s.logger.Errorf("storage: error saving %s: %v", name, err)
				}
			case <-s.shutdownChan:
				return
			}
		}
	}()
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Close stops the workers and writes everything synchronously.
func (s *FileStorage) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.shutdownChan)
		s.wg.Wait()

		err = errors.Join(s.saveRecords(), s.saveActivities(), s.saveProfiles())
	})
	return err
}

// --- RecordRepository ---
func (s *FileStorage) AppendRecord(ctx context.Context, rec *internal.EmotionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *rec
	recs := s.records[rec.UserID]
	i := sort.Search(len(recs), func(i int) bool { return recs[i].Timestamp <= c.Timestamp })
	recs = append(recs, nil)
	copy(recs[i+1:], recs[i:])
	recs[i] = &c
	s.records[rec.UserID] = recs

	notify(s.saveRecordsChan)
	return nil
}

func (s *FileStorage) ListRecords(ctx context.Context, userID string) ([]internal.EmotionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[userID]
	out := make([]internal.EmotionRecord, len(recs))
	for i, r := range recs {
		out[i] = *r
	}
	return out, nil
}

func (s *FileStorage) DeleteRecord(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.records[userID]
	for i, r := range recs {
		if r.ID == id {
			s.records[userID] = append(recs[:i:i], recs[i+1:]...)
			notify(s.saveRecordsChan)
			return nil
		}
	}
	return ErrNotFound
}

func (s *FileStorage) ReplaceRecords(ctx context.Context, userID string, records []internal.EmotionRecord) error {
	recs := make([]*internal.EmotionRecord, len(records))
	for i := range records {
		r := records[i]
		r.UserID = userID
		recs[i] = &r
	}
	sortNewestFirst(recs)

	s.mu.Lock()
	s.records[userID] = recs
	s.mu.Unlock()

	notify(s.saveRecordsChan)
	return nil
}

// --- ActivityRepository ---
func (s *FileStorage) ListActivities(ctx context.Context, userID string) ([]internal.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acts, ok := s.activities[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]internal.Activity{}, acts...), nil
}

func (s *FileStorage) SaveActivities(ctx context.Context, userID string, activities []internal.Activity) error {
	s.mu.Lock()
	s.activities[userID] = append([]internal.Activity{}, activities...)
	s.mu.Unlock()

	notify(s.saveActivitiesChan)
	return nil
}

// --- ProfileRepository ---
func (s *FileStorage) GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *p
	return &c, nil
}

func (s *FileStorage) SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error {
	c := *profile
	s.mu.Lock()
	s.profiles[userID] = &c
	s.mu.Unlock()

	notify(s.saveProfilesChan)
	return nil
}

// --- Compile-time assertions ---
var _ Store = (*FileStorage)(nil)
