package session

import "github.com/KasumiMercury/primind-timetable/internal/domain"

func copyCourse(c *domain.Course) *domain.Course {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copyCourses(courses []*domain.Course) []*domain.Course {
	out := make([]*domain.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, copyCourse(c))
	}
	return out
}

func copyHomework(h *domain.Homework) *domain.Homework {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

func copyHomeworks(homeworks []*domain.Homework) []*domain.Homework {
	out := make([]*domain.Homework, 0, len(homeworks))
	for _, h := range homeworks {
		out = append(out, copyHomework(h))
	}
	return out
}
