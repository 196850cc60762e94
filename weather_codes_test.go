package main

import "testing"

func TestDescribeWeatherCode(t *testing.T) {
	testCases := []struct {
		name string
		code int32
		want string
	}{
		{name: "Clear Sky", code: 0, want: "Clear sky"},
		{name: "Partly Cloudy", code: 2, want: "Partly cloudy"},
		{name: "Fog", code: 45, want: "Fog"},
		{name: "Moderate Rain", code: 63, want: "Moderate rain"},
		{name: "Snow Grains", code: 77, want: "Snow grains"},
		{name: "Violent Rain Showers", code: 82, want: "Violent rain showers"},
		{name: "Thunderstorm With Heavy Hail", code: 99, want: "Thunderstorm with heavy hail"},
		{name: "Unknown Code", code: 42, want: "Unknown"},
		{name: "Negative Code", code: -1, want: "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := describeWeatherCode(tc.code); got != tc.want {
				t.Errorf("describeWeatherCode(%d) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}
