package refdata

import "kidcost/internal/model"

// defaultCosts holds built-in state-average annual tuition by care type and
// age group, in USD. Figures follow the shape of Child Care Aware of
// America's published state averages; they are illustrative planning
// numbers, not quotes.
var defaultCosts = map[model.CareType]map[string]AgeCosts{
	model.CareCenterBased: {
		"Alabama":              {Infant: 7800, Toddler: 7200, Preschool: 6480},
		"Alaska":               {Infant: 12360, Toddler: 11280, Preschool: 10080},
		"Arizona":              {Infant: 11400, Toddler: 10320, Preschool: 9000},
		"Arkansas":             {Infant: 7080, Toddler: 6600, Preschool: 5880},
		"California":           {Infant: 17400, Toddler: 15720, Preschool: 12720},
		"Colorado":             {Infant: 16200, Toddler: 14640, Preschool: 12240},
		"Connecticut":          {Infant: 16080, Toddler: 14400, Preschool: 12360},
		"Delaware":             {Infant: 12240, Toddler: 11040, Preschool: 9600},
		"District of Columbia": {Infant: 24480, Toddler: 22200, Preschool: 19320},
		"Florida":              {Infant: 10440, Toddler: 9360, Preschool: 8160},
		"Georgia":              {Infant: 9960, Toddler: 9000, Preschool: 7920},
		"Hawaii":               {Infant: 15480, Toddler: 13920, Preschool: 11640},
		"Idaho":                {Infant: 8640, Toddler: 7920, Preschool: 7080},
		"Illinois":             {Infant: 14760, Toddler: 13200, Preschool: 10920},
		"Indiana":              {Infant: 10200, Toddler: 9240, Preschool: 8040},
		"Iowa":                 {Infant: 10560, Toddler: 9600, Preschool: 8400},
		"Kansas":               {Infant: 11520, Toddler: 10320, Preschool: 8880},
		"Kentucky":             {Infant: 8400, Toddler: 7680, Preschool: 6840},
		"Louisiana":            {Infant: 7560, Toddler: 7080, Preschool: 6360},
		"Maine":                {Infant: 11880, Toddler: 10680, Preschool: 9240},
		"Maryland":             {Infant: 15600, Toddler: 14040, Preschool: 11760},
		"Massachusetts":        {Infant: 20880, Toddler: 18840, Preschool: 15480},
		"Michigan":             {Infant: 11160, Toddler: 10080, Preschool: 8760},
		"Minnesota":            {Infant: 16320, Toddler: 14640, Preschool: 12120},
		"Mississippi":          {Infant: 6480, Toddler: 6000, Preschool: 5400},
		"Missouri":             {Infant: 10680, Toddler: 9600, Preschool: 8280},
		"Montana":              {Infant: 9840, Toddler: 9000, Preschool: 7920},
		"Nebraska":             {Infant: 11280, Toddler: 10200, Preschool: 8760},
		"Nevada":               {Infant: 11640, Toddler: 10440, Preschool: 9000},
		"New Hampshire":        {Infant: 13560, Toddler: 12240, Preschool: 10440},
		"New Jersey":           {Infant: 15120, Toddler: 13560, Preschool: 11400},
		"New Mexico":           {Infant: 9480, Toddler: 8640, Preschool: 7560},
		"New York":             {Infant: 16440, Toddler: 14760, Preschool: 12360},
		"North Carolina":       {Infant: 10920, Toddler: 9840, Preschool: 8520},
		"North Dakota":         {Infant: 10320, Toddler: 9360, Preschool: 8160},
		"Ohio":                 {Infant: 10800, Toddler: 9720, Preschool: 8400},
		"Oklahoma":             {Infant: 8880, Toddler: 8160, Preschool: 7200},
		"Oregon":               {Infant: 14640, Toddler: 13080, Preschool: 10920},
		"Pennsylvania":         {Infant: 12600, Toddler: 11400, Preschool: 9720},
		"Rhode Island":         {Infant: 13800, Toddler: 12480, Preschool: 10560},
		"South Carolina":       {Infant: 8760, Toddler: 8040, Preschool: 7080},
		"South Dakota":         {Infant: 7920, Toddler: 7320, Preschool: 6480},
		"Tennessee":            {Infant: 9600, Toddler: 8760, Preschool: 7680},
		"Texas":                {Infant: 11160, Toddler: 10080, Preschool: 8640},
		"Utah":                 {Infant: 10440, Toddler: 9480, Preschool: 8160},
		"Vermont":              {Infant: 13320, Toddler: 12000, Preschool: 10200},
		"Virginia":             {Infant: 14280, Toddler: 12840, Preschool: 10800},
		"Washington":           {Infant: 16560, Toddler: 14880, Preschool: 12360},
		"West Virginia":        {Infant: 8520, Toddler: 7800, Preschool: 6960},
		"Wisconsin":            {Infant: 12840, Toddler: 11520, Preschool: 9840},
		"Wyoming":              {Infant: 9720, Toddler: 8880, Preschool: 7800},
	},
	model.CareFamilyCare: {
		"Alabama":              {Infant: 6240, Toddler: 5880, Preschool: 5400},
		"Alaska":               {Infant: 9600, Toddler: 8880, Preschool: 8160},
		"Arizona":              {Infant: 8520, Toddler: 7920, Preschool: 7200},
		"Arkansas":             {Infant: 5760, Toddler: 5400, Preschool: 4920},
		"California":           {Infant: 11760, Toddler: 10920, Preschool: 9840},
		"Colorado":             {Infant: 11280, Toddler: 10440, Preschool: 9360},
		"Connecticut":          {Infant: 11400, Toddler: 10560, Preschool: 9480},
		"Delaware":             {Infant: 9240, Toddler: 8520, Preschool: 7680},
		"District of Columbia": {Infant: 16800, Toddler: 15600, Preschool: 13920},
		"Florida":              {Infant: 8280, Toddler: 7680, Preschool: 6960},
		"Georgia":              {Infant: 7680, Toddler: 7200, Preschool: 6480},
		"Hawaii":               {Infant: 10560, Toddler: 9720, Preschool: 8760},
		"Idaho":                {Infant: 6960, Toddler: 6480, Preschool: 5880},
		"Illinois":             {Infant: 10440, Toddler: 9720, Preschool: 8640},
		"Indiana":              {Infant: 7800, Toddler: 7200, Preschool: 6600},
		"Iowa":                 {Infant: 7560, Toddler: 7080, Preschool: 6480},
		"Kansas":               {Infant: 8160, Toddler: 7560, Preschool: 6840},
		"Kentucky":             {Infant: 6720, Toddler: 6240, Preschool: 5760},
		"Louisiana":            {Infant: 6120, Toddler: 5760, Preschool: 5280},
		"Maine":                {Infant: 9000, Toddler: 8400, Preschool: 7560},
		"Maryland":             {Infant: 10680, Toddler: 9960, Preschool: 8880},
		"Massachusetts":        {Infant: 13920, Toddler: 12960, Preschool: 11520},
		"Michigan":             {Infant: 8400, Toddler: 7800, Preschool: 7080},
		"Minnesota":            {Infant: 9960, Toddler: 9240, Preschool: 8280},
		"Mississippi":          {Infant: 5280, Toddler: 5040, Preschool: 4680},
		"Missouri":             {Infant: 7680, Toddler: 7200, Preschool: 6480},
		"Montana":              {Infant: 7920, Toddler: 7320, Preschool: 6720},
		"Nebraska":             {Infant: 8040, Toddler: 7440, Preschool: 6840},
		"Nevada":               {Infant: 8760, Toddler: 8160, Preschool: 7320},
		"New Hampshire":        {Infant: 10080, Toddler: 9360, Preschool: 8400},
		"New Jersey":           {Infant: 11040, Toddler: 10200, Preschool: 9120},
		"New Mexico":           {Infant: 7440, Toddler: 6960, Preschool: 6360},
		"New York":             {Infant: 11880, Toddler: 11040, Preschool: 9840},
		"North Carolina":       {Infant: 8280, Toddler: 7680, Preschool: 6960},
		"North Dakota":         {Infant: 7800, Toddler: 7200, Preschool: 6600},
		"Ohio":                 {Infant: 8160, Toddler: 7560, Preschool: 6840},
		"Oklahoma":             {Infant: 6960, Toddler: 6480, Preschool: 5880},
		"Oregon":               {Infant: 10200, Toddler: 9480, Preschool: 8520},
		"Pennsylvania":         {Infant: 9360, Toddler: 8760, Preschool: 7800},
		"Rhode Island":         {Infant: 10080, Toddler: 9360, Preschool: 8400},
		"South Carolina":       {Infant: 6840, Toddler: 6360, Preschool: 5880},
		"South Dakota":         {Infant: 6360, Toddler: 6000, Preschool: 5520},
		"Tennessee":            {Infant: 7440, Toddler: 6960, Preschool: 6360},
		"Texas":                {Infant: 8400, Toddler: 7800, Preschool: 7080},
		"Utah":                 {Infant: 7800, Toddler: 7200, Preschool: 6600},
		"Vermont":              {Infant: 9840, Toddler: 9120, Preschool: 8280},
		"Virginia":             {Infant: 10320, Toddler: 9600, Preschool: 8640},
		"Washington":           {Infant: 11520, Toddler: 10680, Preschool: 9600},
		"West Virginia":        {Infant: 6720, Toddler: 6240, Preschool: 5760},
		"Wisconsin":            {Infant: 9480, Toddler: 8760, Preschool: 7920},
		"Wyoming":              {Infant: 7560, Toddler: 7080, Preschool: 6480},
	},
}
