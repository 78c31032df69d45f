package realtime

// Publisher is anything that can publish a named event.
type Publisher interface {
	Publish(event string)
}

// CountingPublisher calls count for every event before handing it on.
type CountingPublisher struct {
	Next  Publisher
	Count func(event string)
}

func (p CountingPublisher) Publish(event string) {
	if p.Count != nil {
		p.Count(event)
	}
	p.Next.Publish(event)
}
