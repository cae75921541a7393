package summary_test

import (
	"fmt"
	"testing"

	model "github.com/peakline/peakline/internal/domain/model"
	scoring "github.com/peakline/peakline/internal/domain/scoring"
	summary "github.com/peakline/peakline/internal/domain/summary"
	"github.com/smartystreets/goconvey/convey"
)

// rideWithPoints builds a flat 55 km ride whose PLS result is exactly the
// requested number of points: the reference athlete needs 1 hour, so a
// moving time of 3.6e6/points seconds yields a time ratio of points/1000.
func rideWithPoints(id string, points int) model.Activity {
	distance := 55_000.0
	movingTime := 3_600_000.0 / float64(points)
	return model.Activity{
		ID:         id,
		Name:       "ride " + id,
		StartDate:  "2024-06-01T08:00:00Z",
		Distance:   &distance,
		MovingTime: &movingTime,
		Type:       model.TypeRide,
	}
}

func brokenActivity(id string) model.Activity {
	movingTime := 3600.0
	return model.Activity{ID: id, MovingTime: &movingTime}
}

func TestAggregator_Aggregate(t *testing.T) {
	convey.Convey("Given an aggregator over the default engine", t, func() {
		aggregator := summary.NewAggregator(scoring.NewEngine())

		convey.Convey("When the input list is empty", func() {
			_, err := aggregator.Aggregate(nil)

			convey.Convey("Then it should fail with ErrNoActivities", func() {
				convey.So(err, convey.ShouldEqual, summary.ErrNoActivities)
			})
		})

		convey.Convey("When no activity can be scored", func() {
			_, err := aggregator.Aggregate([]model.Activity{
				brokenActivity("a"),
				brokenActivity("b"),
			})

			convey.Convey("Then it should fail with ErrNothingScoreable", func() {
				convey.So(err, convey.ShouldEqual, summary.ErrNothingScoreable)
			})
		})

		convey.Convey("When only two activities score", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("a", 500),
				rideWithPoints("b", 700),
			})

			convey.Convey("Then the summary should still be produced", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TopScores, convey.ShouldHaveLength, 2)
				convey.So(result.OverallScore, convey.ShouldEqual, 600.0)
				convey.So(result.Tier, convey.ShouldEqual, scoring.TierGood)
				convey.So(result.TotalActivitiesAnalyzed, convey.ShouldEqual, 2)
			})

			convey.Convey("And the trend should be Insufficient", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.Trend, convey.ShouldEqual, summary.TrendInsufficient)
			})
		})

		convey.Convey("When twenty activities are supplied", func() {
			activities := make([]model.Activity, 0, 20)
			for i := 1; i <= 20; i++ {
				activities = append(activities, rideWithPoints(fmt.Sprintf("act-%d", i), 50*i))
			}

			result, err := aggregator.Aggregate(activities)

			convey.Convey("Then only the six best should feed the overall score", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TopScores, convey.ShouldHaveLength, 6)
				// top six points: 1000, 950, 900, 850, 800, 750
				convey.So(result.TopScores[0].Points, convey.ShouldEqual, 1000)
				convey.So(result.TopScores[5].Points, convey.ShouldEqual, 750)
				convey.So(result.OverallScore, convey.ShouldEqual, 875.0)
				convey.So(result.Tier, convey.ShouldEqual, scoring.TierExcellent)
				convey.So(result.TotalActivitiesAnalyzed, convey.ShouldEqual, 20)
			})

			convey.Convey("And the ascending history should read as a positive trend", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.Trend, convey.ShouldEqual, summary.TrendPositive)
			})
		})

		convey.Convey("When recent scores decline", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("a", 800),
				rideWithPoints("b", 600),
				rideWithPoints("c", 400),
			})

			convey.Convey("Then the trend should be Negative", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.Trend, convey.ShouldEqual, summary.TrendNegative)
			})
		})

		convey.Convey("When the first and last of the recent three are equal", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("a", 500),
				rideWithPoints("b", 900),
				rideWithPoints("c", 500),
			})

			convey.Convey("Then the middle score is ignored and the trend is Stable", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.Trend, convey.ShouldEqual, summary.TrendStable)
			})
		})

		convey.Convey("When unscoreable activities are mixed in", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("a", 700),
				brokenActivity("x"),
				rideWithPoints("b", 500),
			})

			convey.Convey("Then they are discarded and the trend window shrinks", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TotalActivitiesAnalyzed, convey.ShouldEqual, 2)
				convey.So(result.Trend, convey.ShouldEqual, summary.TrendInsufficient)
			})
		})

		convey.Convey("When several activities tie on points", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("first", 600),
				rideWithPoints("second", 600),
				rideWithPoints("third", 600),
			})

			convey.Convey("Then the original relative order is preserved", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TopScores[0].ActivityID, convey.ShouldEqual, "first")
				convey.So(result.TopScores[1].ActivityID, convey.ShouldEqual, "second")
				convey.So(result.TopScores[2].ActivityID, convey.ShouldEqual, "third")
			})
		})

		convey.Convey("When an activity has no name", func() {
			unnamed := rideWithPoints("anon", 500)
			unnamed.Name = ""
			result, err := aggregator.Aggregate([]model.Activity{unnamed})

			convey.Convey("Then the entry name falls back to Unknown", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TopScores[0].Name, convey.ShouldEqual, "Unknown")
			})
		})
	})

	convey.Convey("Given an aggregator with a custom top-N", t, func() {
		aggregator := summary.NewAggregator(scoring.NewEngine(), summary.WithTopN(2))

		convey.Convey("When three activities are supplied", func() {
			result, err := aggregator.Aggregate([]model.Activity{
				rideWithPoints("a", 400),
				rideWithPoints("b", 800),
				rideWithPoints("c", 600),
			})

			convey.Convey("Then only the best two feed the overall score", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(result.TopScores, convey.ShouldHaveLength, 2)
				convey.So(result.OverallScore, convey.ShouldEqual, 700.0)
			})
		})
	})
}
