package scheduler

import (
	"context"
	"time"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/controllers"
	"github.com/genialityco/events-api/models"
)

const sweepTimeout = 30 * time.Second

// Scheduler owns the background sweeps: publishing time-triggered news and
// delivering scheduled notification templates. Sweeps run independently of
// request handling and are not coordinated with concurrent manual edits
// beyond the conditional filters in their updates.
type Scheduler struct {
	cfg  *config.Config
	cron *cron.Cron
}

func New(cfg *config.Config) *Scheduler {
	return &Scheduler{cfg: cfg, cron: cron.New()}
}

// Start registers the sweeps on the configured cadence and launches the
// cron loop.
func (s *Scheduler) Start() error {
	if err := s.cron.AddFunc(s.cfg.SweepEvery, s.runNewsSweep); err != nil {
		return errors.Wrap(err, "scheduling news sweep")
	}
	if err := s.cron.AddFunc(s.cfg.SweepEvery, s.runTemplateSweep); err != nil {
		return errors.Wrap(err, "scheduling template sweep")
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runNewsSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	published, err := PublishDueNews(ctx, s.cfg, time.Now().UTC())
	if err != nil {
		grip.Errorf("news publish sweep: %v", err)
		return
	}
	if published > 0 {
		grip.Infof("news publish sweep: published %d items", published)
	}
}

func (s *Scheduler) runTemplateSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	sent, err := SendDueTemplates(ctx, s.cfg, time.Now().UTC())
	if err != nil {
		grip.Errorf("template send sweep: %v", err)
		return
	}
	if sent > 0 {
		grip.Infof("template send sweep: delivered %d templates", sent)
	}
}

// PublishDueNews flips isPublic on every news item whose schedule has
// passed. The isPublic:false condition makes the sweep idempotent: an item
// published once never toggles back.
func PublishDueNews(ctx context.Context, cfg *config.Config, now time.Time) (int64, error) {
	res, err := cfg.DB().Collection(models.NewsCollection).UpdateMany(ctx,
		bson.M{
			"isPublic":    false,
			"scheduledAt": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{
			"isPublic":    true,
			"publishedAt": now,
			"updatedAt":   now,
		}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "publishing due news")
	}
	return res.ModifiedCount, nil
}

// SendDueTemplates delivers every unsent template whose schedule has
// passed. Each template is claimed with a conditional flag flip before
// delivery so overlapping sweeps cannot send it twice.
func SendDueTemplates(ctx context.Context, cfg *config.Config, now time.Time) (int, error) {
	coll := cfg.DB().Collection(models.NotificationTemplatesCollection)
	cursor, err := coll.Find(ctx, bson.M{
		"isSent":      false,
		"scheduledAt": bson.M{"$lte": now},
	})
	if err != nil {
		return 0, errors.Wrap(err, "finding due templates")
	}
	var due []models.NotificationTemplate
	if err := cursor.All(ctx, &due); err != nil {
		return 0, errors.Wrap(err, "decoding due templates")
	}

	sent := 0
	for _, tpl := range due {
		claim, err := coll.UpdateOne(ctx,
			bson.M{"_id": tpl.ID, "isSent": false},
			bson.M{"$set": bson.M{"isSent": true, "updatedAt": now}},
		)
		if err != nil {
			grip.Errorf("claiming template %s: %v", tpl.ID.Hex(), err)
			continue
		}
		if claim.ModifiedCount == 0 {
			continue
		}
		if _, err := controllers.DeliverTemplate(ctx, cfg, tpl.ID); err != nil {
			grip.Errorf("delivering template %s: %v", tpl.ID.Hex(), err)
			continue
		}
		sent++
	}
	return sent, nil
}
