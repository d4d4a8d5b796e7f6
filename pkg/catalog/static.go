// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"slices"
)

// StaticLoader serves an in-process catalog.
type StaticLoader struct {
	restaurants []Restaurant
}

// NewStaticLoader returns a loader over a private copy of restaurants.
// A nil slice selects DefaultRestaurants.
func NewStaticLoader(restaurants []Restaurant) *StaticLoader {
	if restaurants == nil {
		restaurants = DefaultRestaurants()
	}
	return &StaticLoader{restaurants: slices.Clone(restaurants)}
}

// Load returns a fresh copy of the catalog after validating it.
func (l *StaticLoader) Load(ctx context.Context) ([]Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(l.restaurants); err != nil {
		return nil, err
	}
	return slices.Clone(l.restaurants), nil
}

// DefaultRestaurants returns the built-in catalog. The two
// "Very very Late Night Diner" entries are intentional.
func DefaultRestaurants() []Restaurant {
	return []Restaurant{
		{Name: "Pizza Hut", Cuisine: "Italian", Address: "123 Main St", OpenTime: "09:00", CloseTime: "23:00", Vegetarian: false, Delivery: true},
		{Name: "Veggie Delight", Cuisine: "Vegetarian", Address: "456 Elm St", OpenTime: "10:00", CloseTime: "22:00", Vegetarian: true, Delivery: true},
		{Name: "Sushi World", Cuisine: "Japanese", Address: "789 Oak St", OpenTime: "11:00", CloseTime: "21:00", Vegetarian: false, Delivery: false},
		{Name: "Late Night Diner", Cuisine: "American", Address: "101 Night St", OpenTime: "10:00", CloseTime: "02:00", Vegetarian: false, Delivery: true},
		{Name: "Very Late Night Diner", Cuisine: "American", Address: "222 Night St", OpenTime: "11:00", CloseTime: "03:00", Vegetarian: false, Delivery: true},
		{Name: "Very very Late Night Diner", Cuisine: "American", Address: "333 Night St", OpenTime: "12:00", CloseTime: "04:00", Vegetarian: false, Delivery: true},
		{Name: "Very very Late Night Diner", Cuisine: "American", Address: "333 Night St", OpenTime: "12:00", CloseTime: "05:00", Vegetarian: false, Delivery: true},
		{Name: "Day time", Cuisine: "American", Address: "333 Night St", OpenTime: "08:00", CloseTime: "16:00", Vegetarian: false, Delivery: true},
	}
}
