package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/peakline/peakline/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestActivity(t *testing.T) {
	convey.Convey("Given an Activity struct", t, func() {
		convey.Convey("When the required fields are set", func() {
			distance := 100_000.0
			movingTime := 14_400.0
			activity := model.Activity{
				ID:            "act-123",
				Name:          "Sunday century",
				Distance:      &distance,
				MovingTime:    &movingTime,
				ElevationGain: 500,
				Type:          model.TypeRide,
			}

			convey.Convey("Then it should report required fields as present", func() {
				convey.So(activity.HasRequiredFields(), convey.ShouldBeTrue)
				convey.So(activity.DistanceM(), convey.ShouldEqual, 100_000.0)
				convey.So(activity.MovingTimeS(), convey.ShouldEqual, 14_400.0)
			})
		})

		convey.Convey("When a required field is missing", func() {
			movingTime := 3600.0
			activity := model.Activity{MovingTime: &movingTime}

			convey.Convey("Then it should report required fields as absent", func() {
				convey.So(activity.HasRequiredFields(), convey.ShouldBeFalse)
				convey.So(activity.DistanceM(), convey.ShouldEqual, 0.0)
			})
		})
	})
}

func TestFromRecord(t *testing.T) {
	convey.Convey("Given a raw activity record", t, func() {
		convey.Convey("When the record carries float values", func() {
			record := map[string]any{
				"id":                   "act-1",
				"name":                 "Morning Ride",
				"start_date":           "2024-05-12T07:31:00Z",
				"distance":             42_195.0,
				"moving_time":          6_300.0,
				"total_elevation_gain": 380.0,
				"average_speed":        6.7,
				"type":                 "Ride",
			}

			activity := model.FromRecord(record)

			convey.Convey("Then every field should be decoded", func() {
				convey.So(activity.ID, convey.ShouldEqual, "act-1")
				convey.So(activity.Name, convey.ShouldEqual, "Morning Ride")
				convey.So(activity.StartDate, convey.ShouldEqual, "2024-05-12T07:31:00Z")
				convey.So(activity.HasRequiredFields(), convey.ShouldBeTrue)
				convey.So(activity.DistanceM(), convey.ShouldEqual, 42_195.0)
				convey.So(activity.MovingTimeS(), convey.ShouldEqual, 6_300.0)
				convey.So(activity.ElevationGain, convey.ShouldEqual, 380.0)
				convey.So(activity.AverageSpeed, convey.ShouldEqual, 6.7)
				convey.So(activity.Type, convey.ShouldEqual, "Ride")
			})
		})

		convey.Convey("When numeric fields arrive as other numeric shapes", func() {
			record := map[string]any{
				"distance":             10_000,
				"moving_time":          int64(1800),
				"total_elevation_gain": json.Number("120.5"),
			}

			activity := model.FromRecord(record)

			convey.Convey("Then they should still be decoded", func() {
				convey.So(activity.HasRequiredFields(), convey.ShouldBeTrue)
				convey.So(activity.DistanceM(), convey.ShouldEqual, 10_000.0)
				convey.So(activity.MovingTimeS(), convey.ShouldEqual, 1800.0)
				convey.So(activity.ElevationGain, convey.ShouldEqual, 120.5)
			})
		})

		convey.Convey("When required fields are missing or null", func() {
			record := map[string]any{
				"id":          "act-2",
				"distance":    nil,
				"moving_time": "not-a-number",
			}

			activity := model.FromRecord(record)

			convey.Convey("Then the activity should report them absent", func() {
				convey.So(activity.HasRequiredFields(), convey.ShouldBeFalse)
				convey.So(activity.Distance, convey.ShouldBeNil)
				convey.So(activity.MovingTime, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the record is empty", func() {
			activity := model.FromRecord(map[string]any{})

			convey.Convey("Then defaults should apply", func() {
				convey.So(activity.HasRequiredFields(), convey.ShouldBeFalse)
				convey.So(activity.ElevationGain, convey.ShouldEqual, 0.0)
				convey.So(activity.Type, convey.ShouldEqual, "")
			})
		})
	})
}
